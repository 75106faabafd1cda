/*
File    : golox/cmd/golox/server.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

`golox serve <port>` runs a REPL server: a net.Listener accepts TCP
connections, and each connection gets its own REPL instance running in
its own goroutine. The connection is passed to the REPL as both reader
and writer, but the REPL writes its banner and results to it and reads
its input lines through readline from the process's stdin, not from
the connection.
This is the one place golox's execution model is actually concurrent —
script evaluation itself has no suspension points or background work.
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/golox/repl"
)

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("golox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
