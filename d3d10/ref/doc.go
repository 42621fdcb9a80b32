// Package ref is a software reference implementation of the d3d10 native
// interfaces.
//
// It validates creation calls against a format support table and the
// resource limits of feature level 10, resolves view descriptors the way
// the native runtime does (an unknown dimension selects the whole
// resource), keeps views alive references to their resource, and stores
// the pixels of uncompressed 2D textures so that CopyResource and the view
// clears can be checked.
package ref
