package ticketing

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Jacobbrewer1/discordgo"
)

// fakePlatform is an in-memory guild implementing Platform. It mimics the
// parts of the Discord API the service relies on, including newest-first
// history pages and REST not-found errors.
type fakePlatform struct {
	mu sync.Mutex

	nextID int

	// channels by ID, with order preserving creation order for listings.
	channels map[string]*discordgo.Channel
	order    []string

	// messages per channel, in send order.
	messages map[string][]*discordgo.Message

	// sends records every raw MessageSend per channel so tests can inspect
	// embeds, components and file attachments.
	sends map[string][]*discordgo.MessageSend

	// deleteReasons records the reason passed for each deleted channel ID.
	deleteReasons map[string]string

	// createErr, when set, is returned by GuildChannelCreate.
	createErr error

	// sendErr, when set, is returned by ChannelMessageSend for channels
	// named sendErrName.
	sendErr     error
	sendErrName string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels:      make(map[string]*discordgo.Channel),
		messages:      make(map[string][]*discordgo.Message),
		sends:         make(map[string][]*discordgo.MessageSend),
		deleteReasons: make(map[string]string),
	}
}

func notFoundErr() error {
	return &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{
			Code:    discordgo.ErrCodeUnknownChannel,
			Message: "Unknown Channel",
		},
	}
}

func (f *fakePlatform) newID() string {
	f.nextID++
	return fmt.Sprintf("%d", f.nextID)
}

func (f *fakePlatform) BotUserID() string {
	return "bot"
}

func (f *fakePlatform) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*discordgo.Channel, 0, len(f.order))
	for _, id := range f.order {
		c := f.channels[id]
		if c.GuildID == guildID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakePlatform) GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	c := &discordgo.Channel{
		ID:                   f.newID(),
		GuildID:              guildID,
		Name:                 data.Name,
		Type:                 data.Type,
		Topic:                data.Topic,
		ParentID:             data.ParentID,
		PermissionOverwrites: data.PermissionOverwrites,
	}
	f.channels[c.ID] = c
	f.order = append(f.order, c.ID)
	return c, nil
}

func (f *fakePlatform) Channel(channelID string) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.channels[channelID]
	if !ok {
		return nil, notFoundErr()
	}
	return c, nil
}

func (f *fakePlatform) ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.channels[channelID]
	if !ok {
		return nil, notFoundErr()
	}
	if edit.Name != "" {
		c.Name = edit.Name
	}
	if edit.Topic != "" {
		c.Topic = edit.Topic
	}
	if edit.ParentID != "" {
		c.ParentID = edit.ParentID
	}
	return c, nil
}

func (f *fakePlatform) ChannelDelete(channelID string, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.channels[channelID]; !ok {
		return notFoundErr()
	}
	delete(f.channels, channelID)
	for i, id := range f.order {
		if id == channelID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	f.deleteReasons[channelID] = reason
	return nil
}

func (f *fakePlatform) ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.channels[channelID]
	if !ok {
		return nil, notFoundErr()
	}
	if f.sendErr != nil && c.Name == f.sendErrName {
		return nil, f.sendErr
	}

	m := &discordgo.Message{
		ID:        f.newID(),
		ChannelID: channelID,
		Content:   msg.Content,
		Author:    &discordgo.User{ID: f.BotUserID(), Username: "ticketbot"},
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute),
	}
	f.messages[channelID] = append(f.messages[channelID], m)
	f.sends[channelID] = append(f.sends[channelID], msg)
	return m, nil
}

func (f *fakePlatform) ChannelMessages(channelID string, limit int, beforeID string, afterID string) ([]*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.channels[channelID]; !ok {
		return nil, notFoundErr()
	}

	all := make([]*discordgo.Message, 0, len(f.messages[channelID]))
	for _, m := range f.messages[channelID] {
		if afterID != "" && snowflake(m.ID) <= snowflake(afterID) {
			continue
		}
		if beforeID != "" && snowflake(m.ID) >= snowflake(beforeID) {
			continue
		}
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return snowflake(all[i].ID) < snowflake(all[j].ID)
	})

	// With after paging Discord returns the messages immediately after the
	// ID, newest first within the page.
	if len(all) > limit {
		all = all[:limit]
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// addChannel seeds a channel directly, bypassing the service.
func (f *fakePlatform) addChannel(guildID, name, topic, parentID string, typ discordgo.ChannelType) *discordgo.Channel {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := &discordgo.Channel{
		ID:       f.newID(),
		GuildID:  guildID,
		Name:     name,
		Topic:    topic,
		ParentID: parentID,
		Type:     typ,
	}
	f.channels[c.ID] = c
	f.order = append(f.order, c.ID)
	return c
}

// addMessage seeds a user message into a channel's history.
func (f *fakePlatform) addMessage(channelID string, author *discordgo.User, content string, ts time.Time) *discordgo.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := &discordgo.Message{
		ID:        f.newID(),
		ChannelID: channelID,
		Content:   content,
		Author:    author,
		Timestamp: ts,
	}
	f.messages[channelID] = append(f.messages[channelID], m)
	return m
}

// lastSend returns the most recent raw send to a channel.
func (f *fakePlatform) lastSend(channelID string) *discordgo.MessageSend {
	f.mu.Lock()
	defer f.mu.Unlock()

	sends := f.sends[channelID]
	if len(sends) == 0 {
		return nil
	}
	return sends[len(sends)-1]
}
