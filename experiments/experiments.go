package experiments

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

// The agents are deterministic, so one game per starting seat is the
// whole behavior of a matchup; the rest is timing noise.
const NumGames = 2 // Per matchup

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 3},
	{ID: 3, Depth: 5},
	{ID: 4, Depth: 7},
}

// RunDepthMatchups plays every depth config against every other, records
// per-game outcomes and per-move search metrics (nodes, cutoffs, leaf
// evaluations, timing), and writes them as CSV files under outDir.
func RunDepthMatchups(outDir string) error {
	matchUps := [][2]metrics.AgentConfig{}
	for i, config1 := range depthConfigs {
		for _, config2 := range depthConfigs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{config1, config2})
		}
	}

	writer, err := metrics.NewWriter(filepath.Join(outDir, "depth"))
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(depthConfigs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().Msgf("running matchup: depth %d vs depth %d", matchUp[0].Depth, matchUp[1].Depth)

		for i := 0; i < NumGames; i++ {
			gameID++

			// Alternate which config starts (red always moves first)
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			red := agent.NewMinimaxAgent(game.Red,
				searcher.WithDepth(first.Depth), searcher.WithMetrics())
			yellow := agent.NewMinimaxAgent(game.Yellow,
				searcher.WithDepth(second.Depth), searcher.WithMetrics())

			winner, gameMetric, moveMetrics, err := engine.NewLocal(red, yellow).Run()
			if err != nil {
				return fmt.Errorf("game %d failed: %w", gameID, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         gameID,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, m := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: m,
				})
			}

			log.Info().Msgf("game %d over: winner=%q moves=%d", gameID, winner, gameMetric.TotalMoves)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}
