// Package flowfile defines the unit of work exchanged between the processor
// and its surrounding host: a content payload plus a bag of string attributes
// used for routing and metadata.
package flowfile

// Well-known attribute keys.
const (
	// AttrFilename is set by the host on intake; it doubles as the default
	// table name when no explicit name is configured.
	AttrFilename = "filename"

	// AttrDDL carries the generated CREATE TABLE statement.
	AttrDDL = "generatedddl"

	// AttrError carries the reason a file was routed to failure.
	AttrError = "jsonddl.error"

	// AttrFingerprint carries the xxh3 content hash, hex-encoded.
	AttrFingerprint = "jsonddl.fingerprint"
)

// File is a single document moving through the pipeline.
type File struct {
	Content    []byte
	Attributes map[string]string
}

// New returns a File wrapping content with an empty attribute map.
func New(content []byte) *File {
	return &File{Content: content, Attributes: map[string]string{}}
}

// Attribute returns the value for key, or "" when unset.
func (f *File) Attribute(key string) string {
	return f.Attributes[key]
}

// SetAttribute stores value under key, allocating the map if needed.
func (f *File) SetAttribute(key, value string) {
	if f.Attributes == nil {
		f.Attributes = map[string]string{}
	}
	f.Attributes[key] = value
}
