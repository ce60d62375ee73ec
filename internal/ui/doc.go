// Package ui contains the Bubble Tea program that renders the estate finder.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, search input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Update routes
//     each tea.Msg through a typed handler registry so key presses, window
//     resizes, and caret blinks are handled by focused functions.
//   - Search editing (internal/ui/input.go) mutates the query buffer and then
//     forwards the full text to the lookup controller, exactly as a text field
//     would fire a change event.
//   - Navigation helpers (internal/ui/navigation.go) cycle districts and
//     sub-districts, move the result cursor, and toggle search focus.
//
// State ownership:
//   - lookup.Controller owns the selected district, the search/filter mode,
//     and the derived result list. The Model never computes results itself.
//   - internal/ui/state.Query holds the caret position of the search text and
//     internal/ui/state.List holds the result cursor and viewport. Both are
//     resynchronised from the controller after every event via syncFromController.
package ui
