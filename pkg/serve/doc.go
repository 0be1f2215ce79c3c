// Package serve hosts widget trees over HTTP and WebSocket.
//
// The server renders the page component to HTML for the initial GET, then
// upgrades /ws to a WebSocket session. The browser-side client forwards DOM
// events as binary frames; the session dispatches them to the handlers
// collected during rendering, re-renders, and streams HTML patches back.
//
//	srv := serve.New(nil)
//	srv.SetPage(func() dom.Component {
//	    dd, _ := widgets.Dropdown(widgets.OptionsFromValues([]int{1, 2, 3}))
//	    return dd
//	})
//	srv.Use(middleware.Prometheus(), middleware.OpenTelemetry())
//	log.Fatal(srv.Run())
package serve
