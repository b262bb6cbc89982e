package ticketing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"strconv"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/ticketing/monitoring"
)

// transcriptTimeFormat is the fixed timestamp format used in transcripts.
const transcriptTimeFormat = "2006-01-02 15:04:05"

// historyPageSize is how many messages are fetched per history request. The
// full history is always traversed; this only bounds how much of it is held
// in memory at once.
const historyPageSize = 100

// Transcript is the immutable snapshot of a ticket channel's history,
// rendered as plain text and as a self contained HTML document. Both live
// only in memory; transcripts are never written to disk.
type Transcript struct {
	// ChannelName is the name of the channel the transcript was built from.
	ChannelName string

	// MessageCount is the number of messages captured.
	MessageCount int

	// Text is the line oriented plain text rendering.
	Text []byte

	// HTML is the styled HTML rendering.
	HTML []byte
}

// TextFileName returns the attachment name for the plain text rendering.
func (t *Transcript) TextFileName() string {
	return fmt.Sprintf("transcript-%s.txt", t.ChannelName)
}

// HTMLFileName returns the attachment name for the HTML rendering.
func (t *Transcript) HTMLFileName() string {
	return fmt.Sprintf("transcript-%s.html", t.ChannelName)
}

// Files returns the transcript as message attachments.
func (t *Transcript) Files() []*discordgo.File {
	return []*discordgo.File{
		{
			Name:        t.TextFileName(),
			ContentType: "text/plain; charset=utf-8",
			Reader:      bytes.NewReader(t.Text),
		},
		{
			Name:        t.HTMLFileName(),
			ContentType: "text/html; charset=utf-8",
			Reader:      bytes.NewReader(t.HTML),
		},
	}
}

// transcriptRecord is one message as it appears in the transcript. It exists
// only while the message is being rendered.
type transcriptRecord struct {
	Timestamp string
	Author    string
	AvatarURL string
	Content   string
}

// transcriptTmpl renders the HTML transcript. All interpolated fields are
// escaped by html/template, message content included.
var transcriptTmpl = template.Must(template.New("transcript").Parse(`{{define "header"}}<!DOCTYPE html>
<html>
<head>
<title>Transcript for {{.}}</title>
<style>
body {
	font-family: Arial, sans-serif;
	background-color: #121212;
	color: #e0e0e0;
	padding: 20px;
}
.message {
	border-bottom: 1px solid #333;
	padding: 10px 0;
}
.timestamp {
	color: #999;
	font-size: 0.85em;
}
.author {
	font-weight: bold;
	color: #ffa726;
}
.avatar {
	width: 20px;
	height: 20px;
	border-radius: 50%;
	vertical-align: middle;
}
</style>
</head>
<body>
<h1>Transcript for {{.}}</h1>
{{end}}{{define "message"}}<div class="message">
<div class="author">{{if .AvatarURL}}<img class="avatar" src="{{.AvatarURL}}"> {{end}}{{.Author}}</div>
<div class="timestamp">{{.Timestamp}}</div>
<div class="content">{{.Content}}</div>
</div>
{{end}}{{define "footer"}}</body>
</html>
{{end}}`))

// BuildTranscript replays the channel's complete message history, oldest
// first, into the two renderings. The history is streamed a page at a time;
// only the rendered output is buffered. Given the same message sequence the
// output is byte identical.
func (s *Service) BuildTranscript(ctx context.Context, channel *discordgo.Channel) (*Transcript, error) {
	text := new(bytes.Buffer)
	htmlBuf := new(bytes.Buffer)

	if err := transcriptTmpl.ExecuteTemplate(htmlBuf, "header", channel.Name); err != nil {
		return nil, fmt.Errorf("error rendering transcript header: %w", err)
	}

	count := 0
	err := s.forEachMessage(ctx, channel.ID, func(m *discordgo.Message) error {
		rec := newTranscriptRecord(m)

		fmt.Fprintf(text, "%s - %s (%s)\n", rec.Timestamp, rec.Author, rec.Content)

		if err := transcriptTmpl.ExecuteTemplate(htmlBuf, "message", rec); err != nil {
			return fmt.Errorf("error rendering transcript message: %w", err)
		}

		count++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := transcriptTmpl.ExecuteTemplate(htmlBuf, "footer", nil); err != nil {
		return nil, fmt.Errorf("error rendering transcript footer: %w", err)
	}

	monitoring.TranscriptMessages.Observe(float64(count))

	return &Transcript{
		ChannelName:  channel.Name,
		MessageCount: count,
		Text:         text.Bytes(),
		HTML:         htmlBuf.Bytes(),
	}, nil
}

func newTranscriptRecord(m *discordgo.Message) *transcriptRecord {
	avatar := ""
	if m.Author != nil && m.Author.Avatar != "" {
		avatar = m.Author.AvatarURL("")
	}

	author := ""
	if m.Author != nil {
		author = m.Author.Username
	}

	return &transcriptRecord{
		Timestamp: m.Timestamp.UTC().Format(transcriptTimeFormat),
		Author:    author,
		AvatarURL: avatar,
		Content:   m.Content,
	}
}

// forEachMessage walks the channel's history oldest first, in pages, calling
// fn for every message. There is no pagination cap; the walk only stops at
// the end of the history, on the first error, or when the context is done.
func (s *Service) forEachMessage(ctx context.Context, channelID string, fn func(*discordgo.Message) error) error {
	afterID := "0"
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.p.ChannelMessages(channelID, historyPageSize, "", afterID)
		if err != nil {
			return fmt.Errorf("error fetching channel history: %w", err)
		}
		if len(page) == 0 {
			return nil
		}

		// The API pages in reverse chronological order; put the page back
		// into chronological order before replaying it.
		sort.Slice(page, func(i, j int) bool {
			return snowflake(page[i].ID) < snowflake(page[j].ID)
		})

		for _, m := range page {
			if err := fn(m); err != nil {
				return err
			}
		}

		afterID = page[len(page)-1].ID
	}
}

// snowflake parses a Discord ID for ordering. IDs increase over time.
func snowflake(id string) uint64 {
	n, _ := strconv.ParseUint(id, 10, 64)
	return n
}
