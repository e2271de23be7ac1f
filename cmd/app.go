package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lexiconlabs/counsel/pkg/config"
	"github.com/lexiconlabs/counsel/pkg/logger"
	"github.com/lexiconlabs/counsel/pkg/render"
	"github.com/lexiconlabs/counsel/pkg/session"
	"github.com/lexiconlabs/counsel/pkg/transport"
	"github.com/spf13/viper"
)

// renderTick is how often the console re-renders while streams are live.
const renderTick = 500 * time.Millisecond

// runTurn attaches to one agent turn: subscribe to its event stream, feed
// the session's single-writer loop, and re-render snapshots until the
// stream ends.
func runTurn(ctx context.Context, turnID string) error {
	settings := config.Get()

	subscriber := transport.NewSubscriber(settings.Agent.BaseURL, settings.Agent.StreamPath, settings.Agent.Timeout())
	sender := transport.NewClient(settings.Agent.BaseURL, settings.Agent.InteractionPath, settings.Agent.Timeout())

	sess := session.NewSession(sender)
	defer sess.Teardown()

	events, err := subscriber.Subscribe(ctx, turnID)
	if err != nil {
		return fmt.Errorf("failed to attach to turn %s: %w", turnID, err)
	}
	logger.Info("Attached to turn %s at %s", turnID, settings.Agent.BaseURL)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sess.Run(ctx, events)
	}()

	renderer := render.NewRenderer(settings.Render.Width, settings.Render.Color && !viper.GetBool("no_color"))

	ticker := time.NewTicker(renderTick)
	defer ticker.Stop()
	reapTicker := time.NewTicker(settings.Session.ReapInterval())
	defer reapTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			<-done
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-done:
			printSnapshots(renderer, sess)
			return nil
		case <-ticker.C:
			printSnapshots(renderer, sess)
		case <-reapTicker.C:
			sess.Reap()
		}
	}
}

func printSnapshots(renderer *render.Renderer, sess *session.Session) {
	for _, doc := range sess.Snapshots() {
		fmt.Println(renderer.Document(doc))
	}
}
