/*
Package render contains renderer-side helpers for domain.Frame values:
a Recorder that keeps a timestamped frame log, a Tween that honours
Frame.Transition the way a CSS transition would, and the glow/indicator
color palette.
*/
package render
