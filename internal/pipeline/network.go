// Package pipeline runs tensor ops in order over a keyed batch.
package pipeline

import (
	"context"
	"maps"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/estimator/internal/op"
)

// Batch maps keys to tensors.
type Batch[T op.Tensor] map[string]T

// Network applies a fixed list of ops to batches.
type Network[T op.Tensor] struct {
	ops []op.TensorOp[T]
}

// NewNetwork creates a Network running ops in the given order.
func NewNetwork[T op.Tensor](ops ...op.TensorOp[T]) (*Network[T], error) {
	for i, o := range ops {
		if o == nil {
			return nil, errors.Errorf("op %d is nil", i)
		}
		if len(o.Outputs()) == 0 {
			return nil, errors.Errorf("op %d (%T) has no outputs", i, o)
		}
	}
	return &Network[T]{ops: ops}, nil
}

// Len returns the number of ops.
func (n *Network[T]) Len() int {
	return len(n.ops)
}

// Run applies every op whose modes contain state.Mode and returns the
// resulting batch. The input batch is not modified.
func (n *Network[T]) Run(ctx context.Context, batch Batch[T], state op.State) (Batch[T], error) {
	out := maps.Clone(batch)
	if out == nil {
		out = Batch[T]{}
	}

	for i, o := range n.ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !o.Modes().Contains(state.Mode) {
			klog.V(3).Infof("pipeline: skipping op %d (%T) in mode %s", i, o, state.Mode)
			continue
		}

		data, err := gather(out, o.Inputs())
		if err != nil {
			return nil, errors.Wrapf(err, "op %d (%T)", i, o)
		}

		klog.V(2).Infof("pipeline: op %d (%T) %v -> %v", i, o, o.Inputs(), o.Outputs())
		result, err := o.Forward(data, state)
		if err != nil {
			return nil, errors.Wrapf(err, "op %d (%T) forward", i, o)
		}

		if err := scatter(out, o.Outputs(), result); err != nil {
			return nil, errors.Wrapf(err, "op %d (%T)", i, o)
		}
	}
	return out, nil
}

// gather reads keys from the batch. One key gives single data; several
// give a sequence in key order.
func gather[T op.Tensor](batch Batch[T], keys []string) (op.Data[T], error) {
	ts := make([]T, len(keys))
	for i, key := range keys {
		t, ok := batch[key]
		if !ok {
			return op.Data[T]{}, errors.Errorf("key %q not found in batch", key)
		}
		ts[i] = t
	}
	if len(ts) == 1 {
		return op.Single(ts[0]), nil
	}
	return op.Sequence(ts...), nil
}

func scatter[T op.Tensor](batch Batch[T], keys []string, result op.Data[T]) error {
	if result.Len() != len(keys) {
		return errors.Errorf("forward returned %d tensors for outputs %v", result.Len(), keys)
	}
	for i, key := range keys {
		batch[key] = result.At(i)
	}
	return nil
}
