package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const appName = "ticketbot"

var (
	// TicketsCreated is the total number of tickets created, by type.
	TicketsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: appName + "_tickets_created_total",
			Help: "Total number of tickets created",
		},
		[]string{"type"},
	)

	// TicketsRefused is the total number of ticket creations refused because
	// the owner was at their open ticket cap, by type.
	TicketsRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: appName + "_tickets_refused_total",
			Help: "Total number of ticket creations refused by the open ticket cap",
		},
		[]string{"type"},
	)

	// TicketsClosed is the total number of tickets closed and archived.
	TicketsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: appName + "_tickets_closed_total",
			Help: "Total number of tickets closed and archived",
		},
	)

	// TicketsDeleted is the total number of archived tickets deleted.
	TicketsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: appName + "_tickets_deleted_total",
			Help: "Total number of archived tickets deleted",
		},
	)

	// ChannelsPurged is the total number of channels removed by bulk purges.
	ChannelsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: appName + "_channels_purged_total",
			Help: "Total number of ticket channels removed by bulk purges",
		},
	)

	// TranscriptMessages observes how many messages each generated
	// transcript contained.
	TranscriptMessages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    appName + "_transcript_messages",
			Help:    "Number of messages per generated transcript",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
