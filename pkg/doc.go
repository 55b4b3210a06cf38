// Package pkg holds the guestcard libraries.
//
// # Overview
//
// Guestcard decides where every element of a hotel room guest card is drawn.
// The engine is three pure packages, used bottom-up:
//
//  1. [scale] - viewport width to raw and normalized scale factors
//  2. [rows] - which rows a card shows, and where the time and guest count go
//  3. [layout] - the positioned, stacked elements of one card
//
// Everything else plumbs decks of cards through the engine:
//
//   - [card] - guest records, card contexts and overrides
//   - [deck] - JSON and TOML deck files
//   - [pipeline] - parallel, cached resolution of a deck and rendering
//   - [sink] - JSON, DOT, SVG and wireframe preview outputs
//   - [cache] - file, redis and null plan caches
//   - [config] - the TOML configuration file
//   - [errors] - coded errors and input validation
//   - [observability] - hooks for logging and metrics
//
// # Data Flow
//
//	deck file
//	     ↓
//	[deck] Load (decode, assign IDs, validate)
//	     ↓
//	[pipeline] Runner.Execute ──→ [cache]
//	     ↓
//	[layout] Resolve per entry ([scale] + [rows])
//	     ↓
//	[sink] JSON/DOT/SVG/preview
//
// # Quick Start
//
//	rec := card.GuestRecord{Name: "Ada Lovelace", DateRange: "Oct 18 - Oct 21", GuestCount: "2"}
//	ctx := card.Context{Category: card.Arrival}
//	plan := layout.Resolve(rec, ctx, nil, 390)
//	for _, el := range plan.PaintOrder() {
//	    fmt.Println(el.Kind, el.X, el.Y)
//	}
package pkg
