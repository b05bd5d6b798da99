// Command finfo prints the metadata block chain of FLAC and PNG files.
package main

func main() {
	execute()
}
