// Package build executes packaging recipes against the container runtime.
//
// A build starts a container from the base image archive, installs the
// recipe's OS packages, applies the copy and run steps in declaration
// order, and exports the container's filesystem as a new image whose
// config carries the recipe's working directory, environment defaults,
// exposed ports, and command. Multi-platform builds repeat the pipeline
// per platform, writing each result to a platform-specific output
// directory.
//
// Execution is sequential and non-branching: the first failing step
// aborts the build, and there are no retries or partial results. Step
// state (environment variables, working directory, shell) is accumulated
// across steps.
//
// Example usage:
//
//	result, err := build.Run(ctx, rt, build.Options{
//	    Recipe:      manifest.Default(),
//	    Name:        "openslides-backend",
//	    BaseArchive: "base.tar",
//	    Output:      "dist",
//	    Root:        ".",
//	})
//	if err != nil {
//	    return err
//	}
package build
