package manager

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("femodel/manager", "structural model management")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
