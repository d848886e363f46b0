package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "scribe_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	notes := make(core.Collection, 0, *count)
	for i := 0; i < *count; i++ {
		n := core.NewNote(fmt.Sprintf("Note %d", i))
		n.Content = fmt.Sprintf("# Benchmark Note %d\nThis is a test note.", i)
		notes = append(notes, n)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.TODO()

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	for _, name := range []string{"notes.json", "notes.yaml", "notes.db"} {
		store, err := scribe.OpenStore(
			scribe.WithPath(filepath.Join(benchDir, name)),
			scribe.WithLogger(logger),
		)
		if err != nil {
			panic(err)
		}

		start := time.Now()
		if err := store.Save(ctx, notes); err != nil {
			panic(err)
		}
		saved := time.Since(start)

		start = time.Now()
		loaded, err := store.Load(ctx)
		if err != nil {
			panic(err)
		}
		load := time.Since(start)

		fmt.Printf("  %-10s save %-12v load %-12v (items: %d)\n", name, saved, load, len(loaded))
	}
	fmt.Printf("--------------------------------------------------\n")
}
