package main

import "github.com/gaurav-prasanna/pdfpipe/cmd"

func main() {
	cmd.Execute()
}
