package random

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("femodel/fake", "random model generation")

var Log = logging.DynamicLogger(logging.DefaultContext(), REALM)
