// Package http is a scripted ActiveSync server used as a loopback system
// under test.
//
// It answers OPTIONS and POST on the ActiveSync endpoint and POST on the
// autodiscover path. Command requests are decoded from either query framing
// and from WBXML, recorded, and answered with the next reply queued for the
// command in a [Script].
package http
