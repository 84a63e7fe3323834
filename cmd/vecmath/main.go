// vecmath - glTF geometry report
// Loads a GLB/glTF model and logs its mesh statistics, bounds and node
// world transforms. With -spin, also simulates a damped quaternion spin.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/vecmath/pkg/math3d"
	"github.com/taigrr/vecmath/pkg/models"
	"github.com/taigrr/vecmath/pkg/motion"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	targetFPS  = flag.Int("fps", 60, "Simulation rate in frames per second")
	spinFrames = flag.Int("spin", 0, "Frames of spin simulation to run (0 disables)")
	debug      = flag.Bool("debug", false, "Human-readable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vecmath - glTF geometry report\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vecmath [options] <model.glb|model.gltf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, flag.Arg(0), *targetFPS, *spinFrames); err != nil {
		logger.Error("report failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func run(logger *zap.Logger, modelPath string, fps, frames int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if frames < 0 {
		return fmt.Errorf("spin frames must not be negative, got %d", frames)
	}

	logger.Debug("loading model", zap.String("path", modelPath))

	doc, err := gltf.Open(modelPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", modelPath, err)
	}

	mesh, err := models.FromDocument(doc, filepath.Base(modelPath))
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	logger.Info("mesh",
		zap.String("name", mesh.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		vec3Field("bounds_min", mesh.BoundsMin),
		vec3Field("bounds_max", mesh.BoundsMax),
		vec3Field("center", mesh.Center()),
		vec3Field("size", mesh.Size()),
	)

	world := models.WorldTransforms(doc)
	for i, node := range doc.Nodes {
		t, ok := world[i]
		if !ok {
			logger.Debug("node not in scene", zap.Int("index", i), zap.String("name", node.Name))
			continue
		}
		logger.Info("node",
			zap.Int("index", i),
			zap.String("name", node.Name),
			vec3Field("translation", t.Translation),
			quatField("rotation", t.Rotation),
			vec3Field("scale", t.Scale),
		)
	}

	if frames > 0 {
		q := simulateSpin(fps, frames)
		logger.Info("spin",
			zap.Int("fps", fps),
			zap.Int("frames", frames),
			quatField("orientation", q),
			zap.Float64("magnitude", q.Magnitude()),
		)
	}

	return nil
}

// simulateSpin kicks a Spin once and lets it run down for the given frames.
func simulateSpin(fps, frames int) math3d.Quaternion[float64] {
	spin := motion.NewSpin(fps)
	spin.ApplyImpulse(math3d.V3(0.5, 2.0, 0.25))
	for i := 0; i < frames; i++ {
		spin.Update()
	}
	return spin.Orientation
}

func vec3Field(key string, v math3d.Vector3[float64]) zap.Field {
	return zap.Float64s(key, []float64{v.X, v.Y, v.Z})
}

func quatField(key string, q math3d.Quaternion[float64]) zap.Field {
	return zap.Float64s(key, []float64{q.X, q.Y, q.Z, q.W})
}
