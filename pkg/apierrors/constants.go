package apierrors

const (
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidID           = "invalidID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidPayload      = "invalidPayload"
	MsgInvalidDate         = "invalidDate"
	MsgDateAndList         = "dateAndList"
	MsgInvalidMoveTarget   = "invalidMoveTarget"
	MsgTaskNotFound        = "taskNotFound"
	MsgListNotFound        = "listNotFound"
	MsgTrashItemNotFound   = "trashItemNotFound"
	MsgTrashEmpty          = "trashEmpty"
	MsgPresetNotFound      = "presetNotFound"
	MsgPresetNameTaken     = "presetNameTaken"
	MsgTagNotFound         = "tagNotFound"
	MsgLinkNotFound        = "linkNotFound"
	MsgAttachmentNotFound  = "attachmentNotFound"
	MsgAttachmentTooLarge  = "attachmentTooLarge"
	MsgMissingFile         = "missingFile"
	MsgInvalidSettings     = "invalidSettings"
	MsgInvalidOrder        = "invalidOrder"
	MsgUnauthorized        = "unauthorized"
	MsgForbidden           = "forbidden"
	MsgRouteNotFound       = "routeNotFound"
	MsgInternalServerError = "internalServerError"
)
