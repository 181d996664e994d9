package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/janpfeifer/must"
	"github.com/urfave/cli/v2"

	"github.com/born-ml/estimator/internal/backend/cpu"
	"github.com/born-ml/estimator/internal/host"
	"github.com/born-ml/estimator/internal/op"
	"github.com/born-ml/estimator/internal/op/hostop"
	"github.com/born-ml/estimator/internal/op/tensorop"
	"github.com/born-ml/estimator/internal/pipeline"
	"github.com/born-ml/estimator/internal/tensor"
)

type cpuTensor = *tensor.Tensor[float32, *cpu.CPUBackend]

func opsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "Run a demo forward pass over backend tensors and host arrays",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "train", Usage: "execution mode (train, eval, test, infer)"},
		},
		Action: func(c *cli.Context) error {
			mode, err := op.ParseMode(c.String("mode"))
			if err != nil {
				return err
			}
			state := op.State{Mode: mode}

			fmt.Fprintln(c.App.Writer, "backend tensors:")
			cpuOut, err := runBackendDemo(c, state)
			if err != nil {
				return err
			}
			printBatch(c.App.Writer, cpuOut)

			fmt.Fprintln(c.App.Writer, "host arrays:")
			hostOut, err := runHostDemo(c, state)
			if err != nil {
				return err
			}
			printBatch(c.App.Writer, hostOut)
			return nil
		},
	}
}

func runBackendDemo(c *cli.Context, state op.State) (pipeline.Batch[cpuTensor], error) {
	backend := cpu.New()
	net, err := pipeline.NewNetwork[cpuTensor](
		tensorop.NewScale[float32, *cpu.CPUBackend](2, []string{"x"}, []string{"x2"}, 0),
		tensorop.NewSum[float32, *cpu.CPUBackend]([]string{"x2", "bias"}, "y", 0),
		tensorop.NewReshape[float32, *cpu.CPUBackend](tensor.Shape{-1, 2}, []string{"y"}, []string{"y"}, op.NewModeSet(op.Train)),
	)
	if err != nil {
		return nil, err
	}

	batch := pipeline.Batch[cpuTensor]{
		"x":    tensor.Arange[float32](0, 6, backend),
		"bias": tensor.Ones[float32](tensor.Shape{6}, backend),
	}
	return net.Run(c.Context, batch, state)
}

func runHostDemo(c *cli.Context, state op.State) (pipeline.Batch[*host.Array], error) {
	notInfer := must.M1(op.ParseModes("!infer"))
	net, err := pipeline.NewNetwork[*host.Array](
		hostop.NewNormalize([]string{"image"}, []string{"image"}, notInfer),
		hostop.NewToHalf([]string{"image"}, []string{"image_f16"}, 0),
	)
	if err != nil {
		return nil, err
	}

	image := must.M1(host.FromFlat([]float32{0, 64, 128, 255, 32, 96}, 2, 3))
	return net.Run(c.Context, pipeline.Batch[*host.Array]{"image": image}, state)
}

func printBatch[T interface {
	op.Tensor
	fmt.Stringer
}](w io.Writer, batch pipeline.Batch[T]) {
	for _, key := range slices.Sorted(maps.Keys(batch)) {
		fmt.Fprintf(w, "  %-10s %s\n", key, batch[key])
	}
}
