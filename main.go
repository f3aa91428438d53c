package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/GMartigny/jogabonito/detect"
	"github.com/GMartigny/jogabonito/game"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	if err := initSprites(); err != nil {
		log.Fatal(err)
	}

	cfg := game.DefaultConfig()
	detector, ready := resolveDetector(cfg)

	match := game.NewMatch(cfg, detector)
	if ready {
		match.Ready()
	}

	ebiten.SetWindowSize(int(cfg.SceneWidth), int(cfg.SceneHeight))
	ebiten.SetWindowTitle("Jogabonito")

	if err := ebiten.RunGame(&Scene{match: match}); err != nil {
		log.Fatal(err)
	}
}

// resolveDetector picks the head source for this run:
//
//	JOGABONITO_DETECTOR_URL    websocket feed from an external face detector
//	JOGABONITO_DETECTOR_SCRIPT path of a JavaScript head model (autoplay)
//	neither                    the mouse cursor plays the head
//
// When the configured feed cannot be reached the session is not retried: the
// match never becomes ready and the scene keeps showing its prompt.
func resolveDetector(cfg game.Config) (game.Detector, bool) {
	if url := os.Getenv("JOGABONITO_DETECTOR_URL"); url != "" {
		client, err := detect.Dial(context.Background(), url)
		if err != nil {
			log.Printf("detector unavailable: %v", err)
			return noDetector{}, false
		}
		return newScaledDetector(client, cfg), true
	}

	if path := os.Getenv("JOGABONITO_DETECTOR_SCRIPT"); path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Printf("detector script unavailable: %v", err)
			return noDetector{}, false
		}
		script, err := detect.NewScript(string(src))
		if err != nil {
			log.Printf("detector script rejected: %v", err)
			return noDetector{}, false
		}
		return newScaledDetector(script, cfg), true
	}

	return cursorDetector{radius: cfg.BallRadius * 1.2}, true
}
