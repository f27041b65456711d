/*
Package maskcmp is a pure Go implementation of the masked equality test used in the re-encryption
check of lattice-based key encapsulation mechanisms. It decides whether shared polynomials, once
compressed, equal public compressed polynomials, at any masking order, and reveals nothing but the
result bit.

The [github.com/tuneinsight/maskcmp/mask] package provides the masking gadgets and conversions, and
the [github.com/tuneinsight/maskcmp/comparison] package the parameter profiles and the comparison pipelines.
*/
package maskcmp
