package export

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("femodel/export", "solver script export")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
