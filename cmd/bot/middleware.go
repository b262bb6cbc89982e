package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/gorilla/mux"
	"github.com/lunarcave/ticketbot/cmd/bot/monitoring"
	"github.com/lunarcave/ticketbot/pkg/logging"
	"github.com/lunarcave/ticketbot/pkg/messages"
	"github.com/lunarcave/ticketbot/pkg/request"
	"github.com/prometheus/client_golang/prometheus"
)

// commandProcessor is the processor for an interaction, be it a slash
// command or a message component.
type commandProcessor func(a IApp, i *discordgo.InteractionCreate) error

// authOption is an option for the auth middleware. It indicates the type of authentication required.
type authOption int

const (
	// authOptionNone indicates that no authentication is required.
	authOptionNone authOption = iota
)

type Controller func(w http.ResponseWriter, r *http.Request)

func middlewareHttp(handler Controller, authRequired authOption, a IApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)

		// Recover from any panics that occur in the handler.
		defer func() {
			if rec := recover(); rec != nil {
				a.Log().Error("Panic in handler",
					slog.String(logging.KeyError, fmt.Sprintf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
				)
				cw.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(cw).Encode(request.NewMessage(request.ErrInternalServer.Error())); err != nil {
					a.Log().Error("Error encoding response", slog.String(logging.KeyError, err.Error()))
				}
			}
		}()

		var path string
		route := mux.CurrentRoute(r)
		if route != nil { // The route may be nil if the request is not routed.
			var err error
			path, err = route.GetPathTemplate()
			if err != nil {
				// An error here is only returned if the route does not define a path.
				a.Log().Error("Error getting path template", slog.String(logging.KeyError, err.Error()))
				path = r.URL.Path // If the route does not define a path, use the URL path.
			}
		} else {
			path = r.URL.Path // If the route is nil, use the URL path.
		}

		defer func() {
			// Run the deferred function after the request has been handled, as the status code will not be available until then.
			monitoring.HttpTotalRequests.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Inc()
			monitoring.HttpRequestDuration.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Observe(time.Since(now).Seconds())
		}()

		handler(cw, r)
	}
}

// interactionHandler routes interactions to their processors. Slash commands
// are looked up by command name, message components by their custom ID.
func interactionHandler(a IApp, commands map[string]commandProcessor, components map[string]commandProcessor) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		var name string
		var processor commandProcessor

		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			name = i.ApplicationCommandData().Name
			processor = commands[name]
		case discordgo.InteractionMessageComponent:
			name = i.MessageComponentData().CustomID
			processor = components[name]
		default:
			return
		}

		a.Log().Debug("Handling interaction " + name)

		if processor == nil {
			a.Log().Error("No processor found for interaction", slog.String("interaction", name))

			if err := respondEphemeral(a, i, messages.ErrUserErrorProcessing); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
			return
		}

		t := prometheus.NewTimer(monitoring.DiscordInteractionDuration.WithLabelValues(name))
		defer t.ObserveDuration()

		if err := processor(a, i); err != nil {
			a.Log().Error(fmt.Sprintf("Error processing interaction %s", name),
				slog.String(logging.KeyError, err.Error()))

			if err := respondError(a, i); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
		}
	}
}
