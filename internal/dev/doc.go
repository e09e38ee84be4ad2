// Package dev provides the development server and live style streaming.
//
// The server renders one page per request with the compiled sheet inlined.
// Styles compiled while serving any request are pushed to every open page
// over a WebSocket, so a page picks up rules another request introduced
// without reloading.
//
// # Routes
//
//	/               the page, sheet inlined
//	/styles.css     the whole sheet
//	/_vstyle/live   live style stream (WebSocket)
//	/metrics        Prometheus metrics
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{
//	    Config: cfg,
//	    Page:   showcase.Page,
//	})
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Live Style Protocol
//
// On connect the client receives a snapshot of the sheet, then one frame
// per inserted rule. Frames are msgpack binary messages; browsers connect
// with ?format=json and receive the same frames as JSON text:
//
//	{"type": "snapshot", "rules": [{"class": "css-1x2y", "css": ".css-1x2y{...}"}]}
//	{"type": "rules", "rules": [{"class": "css-9z8w", "css": ".css-9z8w{...}"}]}
//
// Live styles can be disabled via vstyle.json (dev.liveStyles=false).
package dev
