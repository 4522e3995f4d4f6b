package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/starc/debugs"
	"github.com/reusee/starc/starcconfigs"
)

type Module struct {
	dscope.Module
	Configs starcconfigs.Module
	Debugs  debugs.Module
}
