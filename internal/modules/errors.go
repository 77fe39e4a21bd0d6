package modules

import "errors"

var (
	ErrSettingRequired  = errors.New("modules: setting record is required")
	ErrModuleIDRequired = errors.New("modules: module id is required")
	ErrUnknownModule    = errors.New("modules: unknown module id")
)
