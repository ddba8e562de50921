package service

import "errors"

// 参数校验错误（ValidationError）
var (
	ErrIngredientsRequired  = errors.New("菜谱至少需要一种食材")
	ErrIngredientsNotUnique = errors.New("食材不能重复")
	ErrInvalidAmount        = errors.New("食材数量必须在 1 到 1000 之间")
	ErrTagsRequired         = errors.New("菜谱至少需要一个标签")
	ErrTagsNotUnique        = errors.New("标签不能重复")
	ErrInvalidCookingTime   = errors.New("烹饪时间不能小于 1 分钟")
	ErrInvalidImage         = errors.New("图片必须是有效的 base64 data URI")
	ErrInvalidUsername      = errors.New("用户名只能包含字母、数字和 @/./+/-/_，且不能为 me")
	ErrSearchQueryRequired  = errors.New("搜索关键词不能为空")
)

// 状态冲突错误（Conflict）
var (
	ErrRecipeExists        = errors.New("您已发布过同名菜谱")
	ErrAlreadyFavorited    = errors.New("菜谱已在收藏中")
	ErrNotFavorited        = errors.New("菜谱不在收藏中")
	ErrAlreadyInCart       = errors.New("菜谱已在购物车中")
	ErrNotInCart           = errors.New("菜谱不在购物车中")
	ErrCannotSubscribeSelf = errors.New("不能订阅自己")
	ErrAlreadySubscribed   = errors.New("您已订阅该作者")
	ErrNotSubscribed       = errors.New("您尚未订阅该作者")
	ErrUsernameExists      = errors.New("用户名已存在")
	ErrEmailExists         = errors.New("邮箱已被注册")
)

// 资源不存在错误（NotFound）
var (
	ErrRecipeNotFound     = errors.New("菜谱不存在")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrTagNotFound        = errors.New("标签不存在")
	ErrIngredientNotFound = errors.New("食材不存在")
)

// 认证与权限错误
var (
	ErrInvalidCredential  = errors.New("邮箱或密码错误")
	ErrWrongPassword      = errors.New("当前密码错误")
	ErrRecipeNoPermission = errors.New("只有作者可以修改或删除菜谱")
)
