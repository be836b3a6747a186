package errors

import "google.golang.org/grpc/codes"

// 认证服务代码: 20
// 交换生命周期代码: 21
// 目录/资料服务代码: 22

var (
	// 认证相关错误 (服务 20)
	ErrInvalidCredentials = Register(New(MakeCode(ServiceAuth, CategoryAuth, 1), 401, codes.Unauthenticated, "Invalid email or password", "邮箱或密码错误"))
	ErrEmailTaken         = Register(New(MakeCode(ServiceAuth, CategoryConflict, 1), 409, codes.AlreadyExists, "An account with this email already exists", "该邮箱已注册"))
	ErrResetTokenInvalid  = Register(New(MakeCode(ServiceAuth, CategoryAuth, 2), 401, codes.Unauthenticated, "Invalid or expired reset token", "重置令牌无效或已过期"))

	// 交换请求生命周期错误 (服务 21)
	ErrInvalidTransition = Register(New(MakeCode(ServiceSwap, CategoryConflict, 1), 409, codes.FailedPrecondition, "Invalid request transition", "非法的状态转换"))
	ErrNotParticipant    = Register(New(MakeCode(ServiceSwap, CategoryPermission, 1), 403, codes.PermissionDenied, "Actor is not a participant of this request", "非请求参与者"))
	ErrFeedbackSubmitted = Register(New(MakeCode(ServiceSwap, CategoryConflict, 2), 409, codes.AlreadyExists, "Feedback has already been submitted", "反馈已提交"))
	ErrInvalidRating     = Register(New(MakeCode(ServiceSwap, CategoryRequest, 1), 400, codes.InvalidArgument, "Rating must be between 1 and 5", "评分必须在 1 到 5 之间"))
	ErrRequestNotFound   = Register(New(MakeCode(ServiceSwap, CategoryResource, 1), 404, codes.NotFound, "Swap request not found", "交换请求不存在"))

	// 目录/资料错误 (服务 22)
	ErrUserNotFound = Register(New(MakeCode(ServiceDirectory, CategoryResource, 1), 404, codes.NotFound, "User not found", "用户不存在"))
)
