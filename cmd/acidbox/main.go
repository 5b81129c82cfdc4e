// Command acidbox plays the acid voice and drum machine in real time.
//
// Usage:
//
//	acidbox [flags]
//
// Keys while running: space starts and stops the transport, n and p step
// through the acid presets, d cycles the drum patterns, + and - change the
// tempo, q quits.
//
// Examples:
//
//	acidbox
//	acidbox -preset mentasm -drums "house 909"
//	acidbox -tempo 138 -rate 48000
//	acidbox -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/studio"
)

type options struct {
	rate      int
	buffer    time.Duration
	preset    string
	drums     string
	tempo     float64
	blockSize int
}

func main() {
	var opts options

	flag.IntVar(&opts.rate, "rate", 44100, "output sample rate in Hz")
	flag.DurationVar(&opts.buffer, "buffer", 50*time.Millisecond, "audio device buffer length")
	flag.StringVar(&opts.preset, "preset", "", "acid preset name (default: first preset)")
	flag.StringVar(&opts.drums, "drums", "", "drum pattern name (default: Basic Beat)")
	flag.Float64Var(&opts.tempo, "tempo", 0, "tempo in BPM, 0 keeps the preset tempo")
	flag.IntVar(&opts.blockSize, "block", 256, "internal render block in samples")
	list := flag.Bool("list", false, "list presets and drum patterns")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: acidbox [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays the acid synth and drum machine through the default audio device.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(log.Lshortfile)

	if *list {
		printList()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("error: %v", err)
	}
}

func printList() {
	fmt.Println("presets:")

	for _, name := range preset.Names() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println("drum patterns:")

	for _, name := range preset.DrumNames() {
		fmt.Printf("  %s\n", name)
	}
}

func newStudio(opts options) (*engine, error) {
	s, err := studio.New(float64(opts.rate), studio.WithBlockSize(opts.blockSize))
	if err != nil {
		return nil, err
	}

	e := newEngine(s)
	if err := e.loadByName(opts.preset, opts.drums); err != nil {
		return nil, err
	}

	if opts.tempo > 0 {
		s.SetTempo(opts.tempo)
	}

	return e, nil
}

func run(ctx context.Context, opts options) error {
	e, err := newStudio(opts)
	if err != nil {
		return err
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.buffer,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(e)
	defer func() {
		if err := player.Close(); err != nil {
			log.Printf("closing player: %v", err)
		}
	}()

	log.Printf("playing at %d Hz, tempo %.0f BPM", opts.rate, e.studio.Tempo())

	e.start()
	player.Play()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return controlKeys(ctx, e, os.Stdin)
	})
	g.Go(func() error {
		return watchPlayer(ctx, player)
	})

	return g.Wait()
}

// watchPlayer surfaces asynchronous device errors.
func watchPlayer(ctx context.Context, player *oto.Player) error {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := player.Err(); err != nil {
				return fmt.Errorf("audio device: %w", err)
			}
		}
	}
}
