// Package proto defines the JSON message shapes exchanged over a session's
// websocket connection. Grounded on the teacher's internal/network/packets
// package: the same pattern of naming each wire message as its own typed Go
// struct in a dedicated package, rewritten from fixed-layout binary structs
// to JSON objects since the transport below is a websocket, not a raw TCP
// byte stream.
package proto

// Upload is the first message a session must receive: the voxel world and
// the fixed camera anchor it's viewed from.
type Upload struct {
	World   [][]string `json:"world"`
	OffsetX float64    `json:"offsetX"`
	OffsetY float64    `json:"offsetY"`
	OffsetZ float64    `json:"offsetZ"`
}

// Camera is every subsequent message: the camera position for one frame.
type Camera struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
