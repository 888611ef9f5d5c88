// Package section defines the fixed header of configuration blobs.
package section
