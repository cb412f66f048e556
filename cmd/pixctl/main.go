// Package main é o ponto de entrada do pixctl
package main

func main() {
	Execute()
}
