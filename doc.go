// Package lru converts between conventional URLs and the LRU notation, a
// reversed-label, pipe-delimited, typed-stem text form used to group and
// order web resources by domain hierarchy and path depth.
//
// An LRU is an ordered sequence of type:value stems joined by '|' with a
// trailing '|': scheme (s), port (t), host labels (h, TLD first), path
// segments (p), query (q) and fragment (f):
//
//	s:http|t:80|h:com|h:google|h:www|p:search|q:q=text&p=2|
//
// Storing host labels TLD-first makes LRUs of the same domain share a textual
// prefix, so plain string sorting groups resources by site.
//
// All operations are pure functions over immutable text and are safe for
// concurrent use without coordination.
package lru
