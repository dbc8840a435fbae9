package apierrors

const (
	MsgInvalidPayload     = "invalidPayload"
	MsgPasswordMismatch   = "passwordMismatch"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUnauthorized       = "unauthorized"
	MsgTodoNotFound       = "todoNotFound"
	MsgFailSignUp         = "failSignUp"
	MsgFailLogin          = "failLogin"
	MsgFailListTodos      = "failListTodos"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
)
