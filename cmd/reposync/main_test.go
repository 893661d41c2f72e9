//go:build integration

package main

import (
	"os"
	"testing"

	"github.com/bep/helpers/envhelpers"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestScripts(t *testing.T) {
	params := commonTestScriptsParam
	params.Dir = "testdata/scripts"
	testscript.Run(t, params)
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"reposync": main,
	})
}

func testSetupFunc() func(env *testscript.Env) error {
	sourceDir, _ := os.Getwd()
	return func(env *testscript.Env) error {
		var keyVals []string
		keyVals = append(keyVals, "SOURCE", sourceDir)
		// Settings discovery must not find anything outside the work dir.
		keyVals = append(keyVals, "HOME", env.WorkDir)
		envhelpers.SetEnvVars(&env.Vars, keyVals...)

		return nil
	}
}

var commonTestScriptsParam = testscript.Params{ //nolint:gochecknoglobals // shared test params
	Setup: func(env *testscript.Env) error {
		return testSetupFunc()(env)
	},
}
