// Package format turns resolver results and catalog entries into payloads.
//
// A Payload is the structured response shown to the user. It encodes to JSON
// for machine output and to markdown for the terminal, where Renderer can
// style it with glamour.
package format
