// Command terramap generates a region of chunks and renders it as an ASCII
// map, one character per chunk. It doubles as a determinism smoke test: two
// runs with the same config must print the same map.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/dm-vev/terra/generator"
	"github.com/dm-vev/terra/world"
	"github.com/dm-vev/terra/world/chunk"
	"github.com/pelletier/go-toml"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	uc, err := readConfig()
	if err != nil {
		log.Error("read config", "error", err)
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	var gen world.Generator
	overworld := generator.NewOverworld(conf)
	gen = overworld
	if uc.World.Flat {
		gen = generator.NewFlat(conf)
	}

	radius := uc.Viewer.Radius
	workers := uc.Viewer.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	side := radius*2 + 1
	cells := make([]rune, side*side)

	jobs := make(chan world.ChunkPos, side*side)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pos := range jobs {
				c := chunk.New()
				ok := gen.GenerateChunk(pos, c)
				r := cell(overworld, uc, pos)
				mu.Lock()
				if !ok {
					failed++
				}
				cells[(int(pos[1])+radius)*side+int(pos[0])+radius] = r
				mu.Unlock()
			}
		}()
	}
	for cx := -radius; cx <= radius; cx++ {
		for cy := -radius; cy <= radius; cy++ {
			jobs <- world.ChunkPos{int32(cx), int32(cy)}
		}
	}
	close(jobs)
	wg.Wait()

	for row := 0; row < side; row++ {
		fmt.Println(string(cells[row*side : (row+1)*side]))
	}
	log.Info("region generated",
		"chunks", side*side,
		"workers", workers,
		"failed", failed,
		"took", time.Since(start))
}

// cell picks the map character of a chunk from its centre column: water,
// land, hills or peaks by surface height.
func cell(g *generator.Overworld, uc generator.UserConfig, pos world.ChunkPos) rune {
	gx := int(pos[0])*world.ChunkSizeX + world.ChunkSizeX/2
	gy := int(pos[1])*world.ChunkSizeY + world.ChunkSizeY/2
	if uc.World.Flat {
		return '.'
	}
	h := g.GroundHeight(gx, gy)
	switch {
	case h <= world.SeaLevel:
		return '~'
	case h >= 100:
		return '^'
	case h >= 80:
		return 'n'
	default:
		return '.'
	}
}

// readConfig loads config.toml, writing the default config first if the file
// does not yet exist.
func readConfig() (generator.UserConfig, error) {
	uc := generator.DefaultConfig()
	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(uc)
		if err != nil {
			return uc, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return uc, fmt.Errorf("create default config: %w", err)
		}
		return uc, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return uc, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &uc); err != nil {
		return uc, fmt.Errorf("decode config: %w", err)
	}
	return uc, nil
}
