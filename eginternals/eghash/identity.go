package eghash

import "time"

// CommitDigest returns the identity of a commit created at time t in
// the repository whose staging artifact lives at stagingPath.
//
// The input is the timestamp formatted with TimeFormat concatenated
// with the staging artifact's path. Note what is NOT part of the
// input: the commit's message, parent, and file contents. Two commits
// issued within the same second against the same repository therefore
// collide.
func CommitDigest(t time.Time, stagingPath string) Digest {
	return Sum([]byte(t.Format(TimeFormat) + stagingPath))
}

// BlobDigest returns the identity of the content of the file at path
// as captured at commit time.
//
// The input is the file's absolute path concatenated with its content
// bytes. Because the path is part of the identity, the same content
// stored at two different paths yields two different digests.
func BlobDigest(path string, content []byte) Digest {
	input := make([]byte, 0, len(path)+len(content))
	input = append(input, path...)
	input = append(input, content...)
	return Sum(input)
}
