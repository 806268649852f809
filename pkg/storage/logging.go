package storage

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("femodel/storage", "model file storage")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
