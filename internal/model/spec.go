package model

type Spec struct {
	Info       Info
	Operations []Operation
}

type Info struct {
	Title   string
	Version string
}
