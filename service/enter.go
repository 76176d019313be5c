package service

import (
	"gitee.com/taoJie_1/shop-advisor/service/user"
)

type ServiceGroup struct {
	UserServiceGroup user.ServiceGroup
}

var Service = new(ServiceGroup)
