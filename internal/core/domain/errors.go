package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigValueNotSet is returned when a required manifest key is missing or of the wrong type.
	ErrConfigValueNotSet = zerr.New("value not set")

	// ErrPluginNotFound is returned when a manifest names a solution type with no registered factory.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrBuildNotFound is returned when a requested build name has no entry in the manifest.
	ErrBuildNotFound = zerr.New("build not found")

	// ErrSolutionNotFound is returned when a sub-solution codename has no entry in its parent's
	// solutions map.
	ErrSolutionNotFound = zerr.New("sub solution not found")

	// ErrProcessSpawn is returned when the underlying shell could not be started.
	ErrProcessSpawn = zerr.New("process spawn failed")

	// ErrProcessSignal is returned when the process did not terminate via a normal exit.
	ErrProcessSignal = zerr.New("process did not exit normally")
)
