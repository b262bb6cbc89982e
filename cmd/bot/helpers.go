package main

import (
	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/messages"
)

// interactionResponder is the slice of the session the failure notice needs.
type interactionResponder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func respondError(a IApp, i *discordgo.InteractionCreate) error {
	return sendErrorNotice(a.Session(), i)
}

// sendErrorNotice delivers the generic failure notice to the initiating
// user. A handler that deferred its acknowledgment cannot be responded to a
// second time, so when the response is rejected the notice is sent over the
// followup webhook instead.
func sendErrorNotice(s interactionResponder, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: messages.ErrUserErrorProcessing,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return nil
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: messages.ErrUserErrorProcessing,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

func respondEphemeral(a IApp, i *discordgo.InteractionCreate, content string) error {
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// deferEphemeral acknowledges the interaction so slower work can follow up
// later without the token expiring.
func deferEphemeral(a IApp, i *discordgo.InteractionCreate) error {
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func followupEphemeral(a IApp, i *discordgo.InteractionCreate, params *discordgo.WebhookParams) error {
	params.Flags = discordgo.MessageFlagsEphemeral
	_, err := a.Session().FollowupMessageCreate(i.Interaction, true, params)
	return err
}

func followupContent(a IApp, i *discordgo.InteractionCreate, content string) error {
	return followupEphemeral(a, i, &discordgo.WebhookParams{Content: content})
}

// isAdministrator reports whether the interaction member holds the
// administrator permission in the guild.
func isAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator
}
