package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/progressring/cmd/ringdemo/internal/screen"
	"github.com/go-drift/progressring/pkg/raster"
)

type renderFlags struct {
	out    string
	frames int
	fps    float64
}

func newRenderCmd(flags *globalFlags) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo to numbered PNG frames",
		Long: `Render steps the demo screen at a fixed frame rate and writes each frame
as frame_NNNN.png. Without --frames one full timer cycle, including the
restart delay, is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runRender(resolved.Screen, rf)
		},
	}
	cmd.Flags().StringVarP(&rf.out, "out", "o", "frames", "Output directory")
	cmd.Flags().IntVarP(&rf.frames, "frames", "n", 0, "Number of frames (0 renders one cycle)")
	cmd.Flags().Float64Var(&rf.fps, "fps", 20, "Frames per second of screen time")
	return cmd
}

func runRender(opts screen.Options, rf *renderFlags) error {
	if rf.fps <= 0 || math.IsInf(rf.fps, 0) || math.IsNaN(rf.fps) {
		return fmt.Errorf("--fps must be positive, got %v", rf.fps)
	}
	frames := rf.frames
	if frames <= 0 {
		frames = cycleFrames(opts, rf.fps)
	}
	if err := os.MkdirAll(rf.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	s, err := screen.New(opts)
	if err != nil {
		return err
	}
	stop := s.Start()
	defer stop()

	step := time.Duration(float64(time.Second) / rf.fps)
	log.WithFields(log.Fields{
		"frames": frames,
		"step":   step,
		"out":    rf.out,
	}).Debug("rendering")

	for i := range frames {
		if i > 0 {
			s.Advance(step)
		}
		path := filepath.Join(rf.out, fmt.Sprintf("frame_%04d.png", i))
		if err := raster.SavePNG(path, s.Frame(), s.Background()); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		log.WithFields(log.Fields{
			"frame":    i,
			"label":    s.LabelText(),
			"progress": s.Ring().PresentationProgress(),
		}).Debug("wrote frame")
	}
	log.Infof("wrote %d frames to %s", frames, rf.out)
	return nil
}

// cycleFrames is the frame count covering one timer cycle plus its restart
// delay, with the first and last frames included.
func cycleFrames(opts screen.Options, fps float64) int {
	total := (opts.Max + opts.RestartDelay).Seconds()
	return int(math.Ceil(total*fps)) + 1
}
