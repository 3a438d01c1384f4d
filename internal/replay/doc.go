// Package replay runs scripted editing sessions against the engine.
//
// A script declares buffers, the views clients hold on them, and a list of
// steps. Running it drives an engine.Engine exactly as connected clients
// would, and the resulting state can be dumped as YAML or JSON:
//
//	buffers:
//	  - name: main
//	    text: "hello world"
//	views:
//	  - name: a
//	    buffer: main
//	  - name: b
//	    buffer: main
//	    target: other-client
//	steps:
//	  - view: b
//	    action: set-cursors
//	    cursors: [{position: [0, 6]}]
//	  - view: a
//	    action: insert
//	    text: ">> "
//
// Targets are "local", a UUID, or any other label; each distinct label gets
// its own client identity for the duration of a run.
package replay
