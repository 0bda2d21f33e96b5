// Package geom provides the planar point type shared by the packer, the
// verifier and the renderers.
package geom
