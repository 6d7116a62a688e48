package main

import "github.com/jeffutter/graphql-document-utils/cmd"

func main() {
	cmd.Execute()
}
