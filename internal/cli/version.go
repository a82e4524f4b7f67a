package cli

import (
	"context"
	"fmt"

	"github.com/openslides/ospackd/internal"
)

// Represents the 'ospackd version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
