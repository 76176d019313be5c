package controller

import "gitee.com/taoJie_1/shop-advisor/controller/user"

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup user.ApiGroup
}
