package xmt

import (
	"crypto/sha256"
	"reflect"
	"testing"
)

func TestPadLayer(t *testing.T) {
	ct := newCanonicalTree()

	t.Run("even layer returned as is", func(t *testing.T) {
		layer := ct.layer2
		padded := PadLayer(layer)
		if &padded[0] != &layer[0] {
			t.Errorf("PadLayer() copied an already even layer")
		}
	})

	t.Run("odd layer padded with one EmptyValue", func(t *testing.T) {
		padded := PadLayer(ct.leaves)
		if len(padded) != 6 {
			t.Fatalf("PadLayer() len = %d, want 6", len(padded))
		}
		if !padded[5].IsEmpty() {
			t.Errorf("PadLayer() sentinel = %x, want EmptyValue", padded[5])
		}
		if &padded[0] == &ct.leaves[0] {
			t.Errorf("PadLayer() must copy before padding, the input is immutable")
		}
	})
}

func TestNextLayer(t *testing.T) {
	hasher := sha256.New()
	ct := newCanonicalTree()

	type args struct {
		layer []Value
	}
	tests := []struct {
		name string
		args args
		want []Value
	}{
		{"five leaves pair into three", args{ct.leaves}, ct.layer1},
		{"three pair into two", args{ct.layer1}, ct.layer2},
		{"two pair into the root", args{ct.layer2}, []Value{ct.root}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextLayer(hasher, tt.args.layer)
			if err != nil {
				t.Fatalf("NextLayer() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NextLayer() = %x, want %x", got, tt.want)
			}
		})
	}
}
