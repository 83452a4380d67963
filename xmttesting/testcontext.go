package xmttesting

import (
	"context"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/claimtrail/go-xmt/xmt"
)

// TestContext carries the logger and seeded data generation shared by tests
// across the repo.
type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
}

type TestConfig struct {
	// Seed for the RNG. It is normal to force it to some fixed value so that
	// the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.Rand = rand.New(rand.NewSource(cfg.Seed))
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// GenerateLeaf returns a pseudo random non empty leaf. EmptyValue is reserved
// for padding, so the generator re-rolls the (vanishingly unlikely) all zero
// draw.
func (c *TestContext) GenerateLeaf() xmt.Value {
	var v xmt.Value
	for {
		_, _ = c.Rand.Read(v[:])
		if !v.IsEmpty() {
			return v
		}
	}
}

// GenerateLeaves returns n distinct-by-chance leaves in generation order.
func (c *TestContext) GenerateLeaves(n int) []xmt.Value {
	leaves := make([]xmt.Value, n)
	for i := range leaves {
		leaves[i] = c.GenerateLeaf()
	}
	return leaves
}

// NewDevStorer connects to the local blob store emulator (azurite) and
// ensures the container exists. Integration tests that need real blob
// semantics use this; unit tests should fake the store interface instead.
func NewDevStorer(t *testing.T, container string) *azblob.Storer {
	storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
	if err != nil {
		t.Fatalf("failed to connect to blob store emulator: %v", err)
	}
	client := storer.GetServiceClient()
	// Note: we expect an 'already exists' error here and ignore it.
	_, _ = client.CreateContainer(context.Background(), container, nil)
	return storer
}
