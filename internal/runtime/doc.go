// Package runtime manages build and service containers backed by
// containerd.
//
// A [Runtime] connects to a containerd daemon and provides image import
// and container creation. Image archives (OCI layout or docker-save
// format, as produced by the registry package) are imported into the
// content store, tagged, unpacked for the target platform, and used to
// create containers with overlayfs snapshots.
//
// Each [Container] wraps a running containerd task. Commands can be
// executed inside the container, files can be copied in as tar streams,
// and the final filesystem state can be committed and exported as a new
// image archive whose config carries the packaging metadata: working
// directory, environment defaults, exposed ports, and the container
// command.
//
// Example usage:
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "ospackd")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	ctr, err := rt.StartContainer(ctx, "base.tar", "build-1", "linux/amd64")
//	if err != nil {
//	    return err
//	}
//	defer ctr.Destroy(ctx)
//
//	result, err := ctr.Exec(ctx, "/bin/sh", "pip --version", nil, "")
//	if err != nil {
//	    return err
//	}
//
//	err = ctr.Export(ctx, "dist", runtime.ImageSettings{
//	    Cmd:          []string{"python", "-m", "openslides_backend"},
//	    ExposedPorts: []string{"9002/tcp", "9003/tcp"},
//	})
package runtime
