// Package openapi 注册 Swagger 文档，供 /swagger/*any 使用
package openapi

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/token/login": {
			"post": {
				"tags": [
					"认证"
				],
				"summary": "用户登录",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "登录成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TokenData"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/token/logout": {
			"post": {
				"tags": [
					"认证"
				],
				"summary": "用户登出",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"用户"
				],
				"summary": "用户列表",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"allOf": [
												{
													"$ref": "#/definitions/dto.PaginatedData"
												},
												{
													"type": "object",
													"properties": {
														"items": {
															"type": "array",
															"items": {
																"$ref": "#/definitions/dto.UserInfo"
															}
														}
													}
												}
											]
										}
									}
								}
							]
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"用户"
				],
				"summary": "用户注册",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "注册成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserInfo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UserCreateRequest"
						}
					}
				]
			}
		},
		"/users/me": {
			"get": {
				"tags": [
					"用户"
				],
				"summary": "获取当前用户信息",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserInfo"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/set_password": {
			"post": {
				"tags": [
					"用户"
				],
				"summary": "修改密码",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SetPasswordRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/subscriptions": {
			"get": {
				"tags": [
					"订阅"
				],
				"summary": "我的订阅",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"allOf": [
												{
													"$ref": "#/definitions/dto.PaginatedData"
												},
												{
													"type": "object",
													"properties": {
														"items": {
															"type": "array",
															"items": {
																"$ref": "#/definitions/dto.SubscriptionInfo"
															}
														}
													}
												}
											]
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "recipes_limit",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{id}": {
			"get": {
				"tags": [
					"用户"
				],
				"summary": "获取指定用户信息",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserInfo"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{id}/subscribe": {
			"post": {
				"tags": [
					"订阅"
				],
				"summary": "订阅作者",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "订阅成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SubscriptionInfo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "recipes_limit",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"订阅"
				],
				"summary": "取消订阅",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tags": {
			"get": {
				"tags": [
					"标签"
				],
				"summary": "标签列表",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.TagInfo"
											}
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/tags/{id}": {
			"get": {
				"tags": [
					"标签"
				],
				"summary": "标签详情",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TagInfo"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/ingredients": {
			"get": {
				"tags": [
					"食材"
				],
				"summary": "食材列表",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.IngredientInfo"
											}
										}
									}
								}
							]
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "name",
						"in": "query"
					}
				]
			}
		},
		"/ingredients/{id}": {
			"get": {
				"tags": [
					"食材"
				],
				"summary": "食材详情",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.IngredientInfo"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/recipes": {
			"get": {
				"tags": [
					"菜谱"
				],
				"summary": "菜谱列表",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"allOf": [
												{
													"$ref": "#/definitions/dto.PaginatedData"
												},
												{
													"type": "object",
													"properties": {
														"items": {
															"type": "array",
															"items": {
																"$ref": "#/definitions/dto.RecipeInfo"
															}
														}
													}
												}
											]
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "array",
						"items": {
							"type": "string"
						},
						"collectionFormat": "multi",
						"name": "tags",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "author",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "is_favorited",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "is_in_shopping_cart",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"菜谱"
				],
				"summary": "创建菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "创建成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeInfo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RecipeCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/recipes/search": {
			"get": {
				"tags": [
					"菜谱"
				],
				"summary": "搜索菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"allOf": [
												{
													"$ref": "#/definitions/dto.PaginatedData"
												},
												{
													"type": "object",
													"properties": {
														"items": {
															"type": "array",
															"items": {
																"$ref": "#/definitions/dto.RecipeInfo"
															}
														}
													}
												}
											]
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				]
			}
		},
		"/recipes/download_shopping_cart": {
			"get": {
				"tags": [
					"购物车"
				],
				"summary": "下载购物清单",
				"produces": [
					"text/plain"
				],
				"responses": {
					"200": {
						"description": "购物清单",
						"schema": {
							"type": "string"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/recipes/{id}": {
			"get": {
				"tags": [
					"菜谱"
				],
				"summary": "菜谱详情",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "获取成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeInfo"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"菜谱"
				],
				"summary": "更新菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "更新成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeInfo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "无权限",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RecipeUpdateRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"菜谱"
				],
				"summary": "更新菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "更新成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeInfo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "无权限",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RecipeUpdateRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"菜谱"
				],
				"summary": "删除菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "无权限",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/recipes/{id}/favorite": {
			"post": {
				"tags": [
					"收藏"
				],
				"summary": "收藏菜谱",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "收藏成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeBrief"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"收藏"
				],
				"summary": "取消收藏",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/recipes/{id}/shopping_cart": {
			"post": {
				"tags": [
					"购物车"
				],
				"summary": "加入购物车",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "加入成功",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/response.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.RecipeBrief"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"购物车"
				],
				"summary": "移出购物车",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "请求无效",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "未授权",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "资源不存在",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"response.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {}
			}
		},
		"response.ErrorInfo": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"type": {
					"type": "string"
				}
			}
		},
		"response.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/response.ErrorInfo"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"dto.TokenData": {
			"type": "object",
			"properties": {
				"auth_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_in": {
					"type": "integer"
				}
			}
		},
		"dto.UserCreateRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"username",
				"first_name",
				"last_name",
				"password"
			]
		},
		"dto.SetPasswordRequest": {
			"type": "object",
			"properties": {
				"current_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			},
			"required": [
				"current_password",
				"new_password"
			]
		},
		"dto.UserInfo": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"is_subscribed": {
					"type": "boolean"
				}
			}
		},
		"dto.SubscriptionInfo": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"is_subscribed": {
					"type": "boolean"
				},
				"recipes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RecipeBrief"
					}
				},
				"recipes_count": {
					"type": "integer"
				}
			}
		},
		"dto.PaginationMeta": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				}
			}
		},
		"dto.PaginatedData": {
			"type": "object",
			"properties": {
				"items": {},
				"meta": {
					"$ref": "#/definitions/dto.PaginationMeta"
				}
			}
		},
		"dto.TagInfo": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"slug": {
					"type": "string"
				}
			}
		},
		"dto.IngredientInfo": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"measurement_unit": {
					"type": "string"
				}
			}
		},
		"dto.RecipeIngredientInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"amount": {
					"type": "integer"
				}
			},
			"required": [
				"id"
			]
		},
		"dto.RecipeIngredientInfo": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"measurement_unit": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				}
			}
		},
		"dto.RecipeCreateRequest": {
			"type": "object",
			"properties": {
				"ingredients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RecipeIngredientInput"
					}
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"image": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"text": {
					"type": "string"
				},
				"cooking_time": {
					"type": "integer"
				}
			},
			"required": [
				"image",
				"name",
				"text"
			]
		},
		"dto.RecipeUpdateRequest": {
			"type": "object",
			"properties": {
				"ingredients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RecipeIngredientInput"
					}
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"image": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"text": {
					"type": "string"
				},
				"cooking_time": {
					"type": "integer"
				}
			}
		},
		"dto.RecipeBrief": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"cooking_time": {
					"type": "integer"
				}
			}
		},
		"dto.RecipeInfo": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"tags": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TagInfo"
					}
				},
				"author": {
					"$ref": "#/definitions/dto.UserInfo"
				},
				"ingredients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RecipeIngredientInfo"
					}
				},
				"is_favorited": {
					"type": "boolean"
				},
				"is_in_shopping_cart": {
					"type": "boolean"
				},
				"name": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"text": {
					"type": "string"
				},
				"cooking_time": {
					"type": "integer"
				},
				"pub_date": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "输入格式: Bearer {token}",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/api",
	Schemes:		  []string{},
	Title:			"Foodgram API",
	Description:	  "菜谱分享平台 API 服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
