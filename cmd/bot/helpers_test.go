package main

import (
	"errors"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/messages"
	"github.com/stretchr/testify/require"
)

// fakeResponder records interaction responses and followups, optionally
// rejecting responses the way the API does once an interaction has been
// acknowledged.
type fakeResponder struct {
	respondErr error
	responses  []*discordgo.InteractionResponse
	followups  []*discordgo.WebhookParams
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func TestSendErrorNotice(t *testing.T) {
	f := &fakeResponder{}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}

	require.NoError(t, sendErrorNotice(f, i))
	require.Len(t, f.responses, 1)
	require.Empty(t, f.followups)
	require.Equal(t, messages.ErrUserErrorProcessing, f.responses[0].Data.Content)
	require.Equal(t, discordgo.MessageFlagsEphemeral, f.responses[0].Data.Flags)
}

func TestSendErrorNoticeAfterDeferredAck(t *testing.T) {
	// A handler that deferred before failing has already consumed the
	// interaction response; the notice must still reach the user via the
	// followup webhook.
	f := &fakeResponder{respondErr: errors.New("interaction has already been acknowledged")}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}

	require.NoError(t, sendErrorNotice(f, i))
	require.Empty(t, f.responses)
	require.Len(t, f.followups, 1)
	require.Equal(t, messages.ErrUserErrorProcessing, f.followups[0].Content)
	require.EqualValues(t, discordgo.MessageFlagsEphemeral, f.followups[0].Flags)
}
