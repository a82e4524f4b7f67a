// Package manifest defines the packaging recipe for a backend image.
//
// A [Recipe] is the typed form of the build descriptor: a pinned base
// image, a list of OS packages, a working directory, an ordered list of
// copy and run steps, advisory port declarations, environment defaults,
// and the command the finished container runs. Recipes are loaded from
// YAML files or obtained from [Default], which reproduces the stock
// OpenSlides backend packaging.
//
// Example usage:
//
//	rcp, err := manifest.Load("ospack.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := rcp.Validate(); err != nil {
//	    return err
//	}
package manifest
