package slack

import (
	"fmt"
	"strings"

	"github.com/nrrc/shuttleboard/internal/tournament"
	"github.com/slack-go/slack"
)

func (s *Notifier) formatScheduleNotification(format tournament.Format, matchCount int) slack.Message {
	var blocks []slack.Block

	headerText := slack.NewTextBlockObject("plain_text", "🏸 New schedule is up! 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Format: %s\nMatches: %d\nGrab a court and check your round.", formatLabel(format), matchCount)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatResultNotification(match *tournament.Match, teamA, teamB string) slack.Message {
	var blocks []slack.Block

	headerText := slack.NewTextBlockObject("plain_text", "🏸 Match finished! 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s  %d : %d  %s", teamA, match.ScoreA, match.ScoreB, teamB)
	if match.RoundLabel != "" {
		detailsText += fmt.Sprintf("\n%s", match.RoundLabel)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatStandings(standings []tournament.Standing) slack.Message {
	var blocks []slack.Block

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Current standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var sb strings.Builder
	for _, st := range standings {
		sb.WriteString(fmt.Sprintf("%d. %s  %dp (%dW/%dL)\n", st.Rank, st.Name, st.Points, st.Wins, st.Losses))
	}
	if sb.Len() == 0 {
		sb.WriteString("No standings yet.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", sb.String(), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatChampionNotification(snap *tournament.Snapshot) slack.Message {
	var blocks []slack.Block

	headerText := slack.NewTextBlockObject("plain_text", "🥇 Tournament finished! 🥇", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s is in the books.", snap.Name)
	if snap.WinnerName != "" {
		detailsText += fmt.Sprintf("\nChampions: %s", snap.WinnerName)
	}
	if snap.RunnerUpName != "" {
		detailsText += fmt.Sprintf("\nRunners-up: %s", snap.RunnerUpName)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func formatLabel(format tournament.Format) string {
	switch format {
	case tournament.FormatKnockout:
		return "Knockout"
	case tournament.FormatHybrid:
		return "Groups + Knockout"
	default:
		return "Round Robin"
	}
}
