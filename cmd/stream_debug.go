package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lexiconlabs/counsel/pkg/config"
	"github.com/lexiconlabs/counsel/pkg/genui"
	"github.com/lexiconlabs/counsel/pkg/render"
	"github.com/lexiconlabs/counsel/pkg/session"
	"github.com/spf13/cobra"
)

var streamDebugCmd = &cobra.Command{
	Use:    "stream-debug",
	Short:  "Replay a canned event script through the engine without a server",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Get()
		sess := session.NewSession(nil)
		defer sess.Teardown()
		renderer := render.NewRenderer(settings.Render.Width, settings.Render.Color)

		streamID := "debug-" + uuid.New().String()[:8]
		script := []genui.StreamEvent{
			{
				StreamID:      streamID,
				Action:        genui.ActionStart,
				Agent:         "research",
				ExpectedTypes: []genui.Kind{genui.KindStatusCard, genui.KindCaseCard, genui.KindCaseCard},
			},
			{
				StreamID: streamID,
				Action:   genui.ActionComponent,
				Component: &genui.Component{
					ID:   "c1",
					Type: genui.KindStatusCard,
					Data: map[string]any{"title": "Searching case law"},
				},
			},
			{
				StreamID: streamID,
				Action:   genui.ActionComponent,
				Component: &genui.Component{
					ID:   "c2",
					Type: genui.KindCaseCard,
					Data: map[string]any{"title": "Hadley v Baxendale", "subtitle": "156 ER 145"},
				},
			},
			{
				StreamID:    streamID,
				Action:      genui.ActionDelta,
				ComponentID: "c1",
				Delta:       map[string]any{"title": "Found 1 case", "subtitle": "contract damages"},
			},
			{
				StreamID: streamID,
				Action:   genui.ActionEnd,
			},
		}

		for i, ev := range script {
			sess.Apply(ev)
			fmt.Printf("-- after event %d (%s) --\n", i+1, ev.Action)
			if doc, ok := sess.Snapshot(streamID); ok {
				fmt.Println(renderer.Document(doc))
			}
		}

		reaped := sess.Reap()
		fmt.Printf("reaped: %v\n", reaped)
	},
}

func init() {
	rootCmd.AddCommand(streamDebugCmd)
}
