package stage

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("femodel/stage", "analysis stage management")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
