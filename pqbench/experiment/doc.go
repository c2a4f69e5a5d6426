// Package experiment drives the full benchmark sweep: every usage scenario
// crossed with every traffic pattern, key-agreement scheme and cipher suite,
// with a fixed number of repeated trials per configuration.
//
// Each repetition owns fresh generators and a fresh responder identity; no
// state crosses repetition or configuration boundaries. The sweep is strictly
// sequential and aborts on the first capability or persistence failure.
//
// One measurement property is intentional and worth knowing about: the cipher
// time of a repetition is the elapsed time of the whole message loop, so any
// key rotations triggered inside that loop are included in it. The kem time
// and cipher time samples of a configuration therefore overlap.
package experiment
