// replaycli decodes a Tibia replay recording, drives a headless render
// pass over it, and then serializes it to JSON, per §6's CLI surface:
//
//	replaycli DATA_FOLDER RECORDING [VERSION]
//
// DATA_FOLDER holds Tibia.pic/Tibia.spr/Tibia.dat for the client version
// the recording was made with; VERSION (major.minor[.preview]) overrides
// the version the format reader would otherwise sniff from the
// recording's own header.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tibiacast/tibiarc-sub000/internal/catalogue"
	"github.com/tibiacast/tibiarc-sub000/internal/format"
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/parser"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/render"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/serialize"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		if rerr.IsInvalid(err) {
			os.Exit(1)
		}
		if rerr.IsNotSupported(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 || len(os.Args) > 4 {
		return fmt.Errorf("usage: replaycli DATA_FOLDER RECORDING [VERSION]")
	}
	dataFolder, recordingPath := os.Args[1], os.Args[2]

	cfgPath := os.Getenv("REPLAYCLI_CONFIG")
	if cfgPath == "" {
		cfgPath = "replaycli.toml"
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	recordingData, err := os.ReadFile(recordingPath)
	if err != nil {
		return fmt.Errorf("read recording: %w", err)
	}

	kind, err := format.Detect(recordingData, recordingPath)
	if err != nil {
		return fmt.Errorf("detect container: %w", err)
	}
	reader, ok := format.For(kind)
	if !ok {
		return rerr.NotSupportedf("main.run", "no reader registered for container kind %d", kind)
	}

	triplet, err := resolveVersion(os.Args, reader, recordingData)
	if err != nil {
		return fmt.Errorf("resolve version: %w", err)
	}
	log.Info("resolved client version", zap.String("version", triplet.String()))

	profile := version.New(triplet, log)

	spriteData, pictureData, typeData, err := readAssets(dataFolder)
	if err != nil {
		return fmt.Errorf("read assets: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cat, err := catalogue.Load(ctx, profile, spriteData, pictureData, typeData)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	container, err := reader.Read(ioreader.New(recordingData))
	if err != nil {
		return fmt.Errorf("read container: %w", err)
	}

	p := parser.New(profile, cat)
	rec, err := recording.DecodeAll(container.Frames, p.Parse)
	if err != nil {
		return fmt.Errorf("decode recording: %w", err)
	}
	log.Info("decoded recording",
		zap.Int("frames", len(rec.Frames)),
		zap.Uint32("runtime_ms", rec.Runtime))

	if err := renderHeadless(profile, cat, rec, log); err != nil {
		return fmt.Errorf("render pass: %w", err)
	}

	return writeJSON(cfg, rec, profile)
}

// resolveVersion uses the explicit VERSION argument when present,
// otherwise queries the format reader for the version the container
// itself declares.
func resolveVersion(args []string, reader format.Reader, data []byte) (version.Triplet, error) {
	if len(args) == 4 {
		return parseTriplet(args[3])
	}
	return reader.QueryVersion(ioreader.New(data))
}

func parseTriplet(s string) (version.Triplet, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return version.Triplet{}, rerr.Invalid("main.parseTriplet", "expected major.minor[.preview], got %q", s)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return version.Triplet{}, rerr.Invalid("main.parseTriplet", "non-numeric component %q in %q", part, s)
		}
		nums[i] = n
	}
	t := version.Triplet{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		t.Preview = nums[2]
	}
	return t, nil
}

func readAssets(dataFolder string) (sprite, picture, typeData []byte, err error) {
	read := func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dataFolder, name))
	}
	if sprite, err = read("Tibia.spr"); err != nil {
		return nil, nil, nil, err
	}
	if picture, err = read("Tibia.pic"); err != nil {
		return nil, nil, nil, err
	}
	if typeData, err = read("Tibia.dat"); err != nil {
		return nil, nil, nil, err
	}
	return sprite, picture, typeData, nil
}

// frameClock replays a Recording's own timestamps back at the render
// pass, one frame per Tick, rather than wall-clock time — replaycli is a
// one-shot converter, not an interactive player (§6 draws that
// distinction explicitly for the CLI surface).
type frameClock struct {
	timestamps []uint32
	index      int
}

func (c *frameClock) TellMS() uint32 {
	if c.index >= len(c.timestamps) {
		if len(c.timestamps) == 0 {
			return 0
		}
		return c.timestamps[len(c.timestamps)-1]
	}
	ts := c.timestamps[c.index]
	c.index++
	return ts
}

// logSink discards composed pixels; replaycli has no display, but still
// exercises the render package's FrameSink contract so the conversion
// path and an eventual interactive player share one driving loop.
type logSink struct {
	log    *zap.Logger
	frames int
}

func (s *logSink) Accept(pixels []byte, stride, w, h int, pts uint32) error {
	s.frames++
	nonEmpty := 0
	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] != 0 {
			nonEmpty++
		}
	}
	s.log.Debug("composed frame", zap.Uint32("pts", pts), zap.Int("opaque_pixels", nonEmpty))
	return nil
}

func renderHeadless(profile *version.Profile, cat *catalogue.Catalogue, rec *recording.Recording, log *zap.Logger) error {
	timestamps := make([]uint32, len(rec.Frames))
	for i, f := range rec.Frames {
		timestamps[i] = f.Timestamp
	}

	player := &render.Player{
		Recording:  rec,
		State:      gamestate.New(profile),
		Clock:      &frameClock{timestamps: timestamps},
		Sink:       &logSink{log: log},
		Compositor: &render.Compositor{Catalogue: cat},
	}
	for range rec.Frames {
		if err := player.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(cfg *Config, rec *recording.Recording, profile *version.Profile) error {
	if cfg.Output.JSONPath == "" {
		return serialize.Serialize(rec, profile, os.Stdout)
	}
	f, err := os.Create(cfg.Output.JSONPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return serialize.Serialize(rec, profile, f)
}
